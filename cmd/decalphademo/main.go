// Command decalphademo reproduces the seed-test sequence from the
// original DEC alpha demo: a handful of boundary values, a Fibonacci-
// style additive chain, a countdown via repeated subtraction, and a
// few multiplication demos including the two cases that require a
// correctly rounded subnormal product. It takes no arguments and
// prints a fixed sequence, matching §6's "no CLI" restriction.
package main

import (
	"fmt"

	"github.com/pascal-cuoq/decalpha"
)

func main() {
	fmt.Println(decalpha.PosZero)
	fmt.Println(decalpha.Value(1))
	fmt.Println(decalpha.Value(2))
	fmt.Println("...")
	fmt.Println(decalpha.Value(decalpha.DecadeLo - 2))
	fmt.Println(decalpha.Value(decalpha.DecadeLo - 1))
	fmt.Println(decalpha.Value(decalpha.DecadeLo))
	fmt.Println(decalpha.Value(decalpha.DecadeLo + 1))
	fmt.Println(decalpha.Value(decalpha.DecadeLo + 2))
	fmt.Println("...")
	fmt.Println(decalpha.Value(decalpha.DecadeHi - 2))
	fmt.Println(decalpha.Value(decalpha.DecadeHi - 1))
	fmt.Println(decalpha.Value(decalpha.DecadeHi))
	fmt.Println(decalpha.Value(decalpha.DecadeHi + 1))
	fmt.Println(decalpha.Value(decalpha.DecadeHi + 2))
	fmt.Println("...")

	one := decalpha.MustFromIntegerAndBiasedExp(1, 140)
	fmt.Println(decalpha.Pred(one))
	fmt.Println(one)
	fmt.Println(decalpha.Succ(one))
	fmt.Println("...")

	two := decalpha.Add(one, one)
	fmt.Println(two)
	fmt.Println("...")
	three := decalpha.Add(two, one)
	fmt.Println(three, "(2+1)")
	fmt.Println("...")
	five := decalpha.Add(two, three)
	fmt.Println(five, "(2+3)")
	fmt.Println("...")
	eight := decalpha.Add(five, three)
	fmt.Println(eight, "(5+3)")
	fmt.Println("...")
	eleven := decalpha.Add(eight, three)
	fmt.Println(eleven, "(8+3)")
	fmt.Println("...")

	fmt.Println(decalpha.Value(0x4000000000000000))
	fmt.Println("\n...")
	fmt.Println(decalpha.Value(decalpha.Infinity - 2))
	daMax := decalpha.Infinity - 1
	fmt.Println(daMax, "DA_MAX")
	fmt.Println(decalpha.Infinity)
	fmt.Println(decalpha.Add(decalpha.Infinity, decalpha.Infinity.Neg()), "= inf + (-inf)")

	fmt.Println("\nCountdown:")
	x := eleven
	for i := 11; i > 0; i-- {
		x = decalpha.Sub(x, one)
		fmt.Println(x)
	}

	fmt.Println("\nMultiplication:")
	fmt.Println(decalpha.Mul(five, eight), "(8*5)")
	fmt.Println(decalpha.Mul(eight, eight), "(8*8)")
	fmt.Println(decalpha.Mul(five, five), "(5*5)")
	third := decalpha.MustFromIntegerAndBiasedExp(333_333_333_333_333_333, 122)
	fmt.Println(decalpha.Mul(third, three), "(3*.333...)")
	ninth := decalpha.Mul(third, third)
	fmt.Println(ninth, "(.333...*.333...)")
	fmt.Println(decalpha.Mul(ninth, eleven), "(11*.111...)")
	fmt.Println(decalpha.Mul(decalpha.Value(1), daMax), "(1E-140*DA_MAX)")
	fmt.Println(decalpha.Mul(decalpha.Value(9), daMax), "(9E-140*DA_MAX)")
	fmt.Println(decalpha.Mul(decalpha.Value(987_654_321), daMax), "(987654321E-140*DA_MAX)")

	fmt.Println("\nSubnormal result of *")
	nineNineNine := decalpha.MustFromIntegerAndBiasedExp(999, 140)
	fmt.Println(decalpha.Mul(decalpha.Value(1001), nineNineNine), "(1001E-140*999)")
	a := decalpha.MustFromIntegerAndBiasedExp(99999, 70)
	b := decalpha.MustFromIntegerAndBiasedExp(10000001, 70)
	fmt.Println(decalpha.Mul(a, b), "(99999E-70*10000001E-70)")
}
