// Package constraint defines the term model shared with the frontend
// compiler and builds Rank-1 Constraint Systems (R1CS) from gate lists.
//
// A witness vector w satisfies the system iff for every constraint row
// (L, R, O) the relation (L.w) * (R.w) == (O.w) holds.
package constraint
