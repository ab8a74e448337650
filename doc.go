// Package fincalc provides the computational engine of a programmable
// financial calculator in the HP-12C tradition.
//
// The core functionalities include:
//   - Time Value of Money: given four of the five registers N, I/YR, PV, PMT
//     and FV, compute the fifth (ComputeFV, ComputePV, ComputePMT, ComputeN,
//     ComputeIYR, and Registers.Solve at the caller boundary).
//   - RPN Evaluation: a stack machine that applies binary, unary and
//     stack-reordering operators to a persistent operand Stack (Evaluate).
//   - Rate Conversion: conversion between yearly and monthly periodic rates
//     (ToMonthlyRate, ToYearlyRate).
//
// Every function is pure: registers and stacks are values owned by the
// caller, nothing is retained or mutated across calls, and all of them are
// safe for concurrent use.
//
// Cash flows follow the usual sign convention: money received is positive,
// money paid out is negative. The computed register is always the value that
// balances PV·(1+i)^N + PMT·((1+i)^N−1)/i + FV = 0.
//
// Failures are reported as errors wrapping one of the package sentinels
// (ErrNoSolution, ErrDomain, ErrNonFinite, ErrNotBracketed,
// ErrInsufficientOperands, ErrInvalidOperand). Only ErrNotBracketed comes
// with a usable value: the best approximation of the interest rate.
package fincalc
