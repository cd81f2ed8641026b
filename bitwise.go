package abacus

// Bitwise operations for the programmer keypad. All of them use ordinary
// two's-complement semantics over signed 64-bit integers.

// BitwiseAnd returns a AND b.
func BitwiseAnd(a, b int64) int64 { return a & b }

// BitwiseOr returns a OR b.
func BitwiseOr(a, b int64) int64 { return a | b }

// BitwiseXor returns a XOR b.
func BitwiseXor(a, b int64) int64 { return a ^ b }

// BitwiseNot returns the complement of x, which is -(x+1) in two's
// complement.
func BitwiseNot(x int64) int64 { return ^x }
