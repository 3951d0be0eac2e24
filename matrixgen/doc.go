// Package matrixgen generates synthetic CSR matrices for tests and
// benchmarks. It is not used by the estimator itself.
//
// A config is resolved from a sequence of Options (WithSeed, WithDensity,
// WithBlockStructure) the same way lvlath's builder package resolves a
// builderConfig from BuilderOptions: later options override earlier
// ones, option constructors never panic on nil/zero-value inputs they
// can treat as "use default" instead, and randomness always flows
// through an explicit, caller-visible seed rather than a package-global
// generator.
package matrixgen
