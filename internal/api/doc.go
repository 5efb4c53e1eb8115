// Package api defines the record catalog of the conversion pipeline: the
// closed set of API description variants that flow from one analysis phase
// to the next, plus the error model embedded in ignored-item records.
//
// A record is an Api value parameterized by the analysis payloads its phase
// attaches to functions, structs and typedefs. Eleven kinds are
// pass-through: their payloads are structurally independent of the phase
// parameters and are copied verbatim between phases. Four kinds (enum,
// typedef, function, struct) are transformable and need a conversion rule.
package api
