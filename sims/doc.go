// Package sims provides stochastic processes for exercising the dependence
// tests in examples and benchmarks: lag-correlated AR pairs, independent AR
// pairs, and a nonlinear lagged process. All generators draw from an explicit
// random source, so simulations are reproducible.
package sims
