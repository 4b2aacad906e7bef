// Package matrix holds small fixed-size matrix helpers.
package matrix

// Transpose returns m with rows and columns swapped.
func Transpose(m [3][3]int) [3][3]int {
	var out [3][3]int
	for i := range 3 {
		for j := range 3 {
			out[j][i] = m[i][j]
		}
	}
	return out
}
