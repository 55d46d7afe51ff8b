package brickpile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpuzzle/brickpile"
)

// ExampleSettle settles the seven-brick example and reports both answers.
func ExampleSettle() {
	bricks, err := brickpile.ParseBricks(strings.NewReader(sample))
	if err != nil {
		fmt.Println(err)
		return
	}
	pile, err := brickpile.Settle(bricks)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("removable:", pile.CountRemovable())
	fmt.Println("total collapse:", pile.TotalCollapse())
	fmt.Println("removing", brickpile.Label(0), "drops", pile.CollapseCount(0))
	// Output:
	// removable: 5
	// total collapse: 7
	// removing A drops 6
}
