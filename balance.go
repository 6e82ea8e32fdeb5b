package calc

// CheckBalance verifies that the parentheses in an expression are properly
// nested. The result is a *BracketError at the first close parenthesis that
// has no partner, or at the innermost open parenthesis left unclosed.
func CheckBalance(expression string) error {
	var opens []int
	col := 0
	for _, r := range expression {
		col++
		switch r {
		case '(':
			opens = append(opens, col)
		case ')':
			if len(opens) == 0 {
				return &BracketError{Col: col, Right: ")"}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		return &BracketError{Col: opens[len(opens)-1], Left: "("}
	}
	return nil
}
