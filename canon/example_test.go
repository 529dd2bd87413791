package canon_test

import (
	"fmt"

	"github.com/harelcain/electiontransfer/canon"
)

func ExampleCanon() {
	fmt.Println(canon.Canon("Kfar-Saba"))
	fmt.Println(canon.Canon("Kfar  Saba"))
	fmt.Println(canon.Canon("(Old) Town"))
	fmt.Println(canon.Canon("O'Brien's"))
	// Output:
	// Kfar Saba
	// Kfar Saba
	// Old Town
	// OBriens
}

func ExampleCanon_doubleYod() {
	fmt.Println(canon.Canon("ייחוד"))
	// Output:
	// יחוד
}

func ExampleCanon_overrideTable() {
	fmt.Println(canon.Canon("גולס"))
	// Output:
	// ג'וליס
}
