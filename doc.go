// Package abacus implements the engine of a scientific calculator.
//
// Expressions are ordinary infix arithmetic with a few comforts: "2 pi" is a
// multiplication of two terms, and so is "2(3)"; "sin 2" calls a function on
// a bare term; "-2^2" is "-(2^2)", where "a^b" is exponentiation. Evaluation
// happens on arbitrary-precision floats, and results are normalized the way a
// calculator display expects: exact integers render without a fractional
// part, everything else is rounded to ten decimal places.
//
// Only the names in the default function table (trigonometry, logarithms,
// roots, factorial, rounding, angle conversion, and the constants pi and e)
// are reachable from an expression. There is no way for an expression to run
// anything else. Identifiers outside the table are variables, which evaluate
// only if the caller has defined them.
//
// Session wires the evaluator to calculator state: a display buffer, a
// memory register, and an append-only history. Apply, Convert, and the
// bitwise functions cover the scientific and programmer keypads that work on
// a single entered value rather than a whole expression.
package abacus
