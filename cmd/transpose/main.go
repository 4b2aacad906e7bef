package main

import (
	"fmt"

	"github.com/jacoelho/jsonq/internal/matrix"
)

func main() {
	m := [3][3]int{
		{101, 102, 103},
		{201, 202, 203},
		{301, 302, 303},
	}

	fmt.Println("matrix:")
	printMatrix(m)
	fmt.Println("transposed:")
	printMatrix(matrix.Transpose(m))
}

func printMatrix(m [3][3]int) {
	for _, row := range m {
		fmt.Printf("  %v\n", row)
	}
}
