package catalog_test

import (
	"fmt"

	"github.com/harelcain/electiontransfer/catalog"
)

func ExampleCatalog() {
	cat := catalog.NewCatalog(
		[]catalog.BaseEntry{
			{Code: "A", DisplayName: "Alpha Party", Color: "#ff0000"},
		},
		[]catalog.OverrideEntry{
			{Election: "knesset24", Code: "A", DisplayName: "Alpha (24)"},
		},
		[]catalog.FamilyLink{
			{Election: "knesset24", Code: "A", Family: "right-bloc"},
			{Election: "knesset25", Code: "A2", Family: "right-bloc"},
		},
	)

	fmt.Println(cat.Info("A", "knesset24"))
	fmt.Println(cat.Info("A", "knesset25"))
	fmt.Println(cat.Info("Z", "knesset24"))

	fam1, ok1 := cat.FamilyOf("A", "knesset24")
	fam2, ok2 := cat.FamilyOf("A2", "knesset25")
	_, ok3 := cat.FamilyOf("B", "knesset24")
	fmt.Println(fam1, ok1)
	fmt.Println(fam2, ok2)
	fmt.Println(ok3)
	// Output:
	// knesset24/A="Alpha (24)"
	// knesset25/A="Alpha Party"
	// knesset24/Z="Z" (synthesized)
	// right-bloc true
	// right-bloc true
	// false
}
