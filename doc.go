// Package xdr implements encoding and decoding of the XDR (External Data
// Representation) wire format per RFC 4506.
//
// XDR is the standard data serialization format used by Sun RPC protocols
// including NFS, NLM, and the vxi11 family of instrument control protocols.
// This package provides the format engine only: an Encoder that appends
// byte-exact XDR encodings to an output buffer, and a Decoder that validates
// and consumes them from an in-memory input. It has no knowledge of concrete
// application types; composite shapes (structs, sequences, unions, optionals)
// are driven by a data-model collaborator through the Marshaler and
// Unmarshaler interfaces and the scoped composite operations on Encoder and
// Decoder.
//
// Key characteristics of XDR:
//   - Big-endian byte order for all multi-byte integers
//   - 4-byte alignment for every encoded item
//   - Variable-length data is preceded by a 4-byte length
//   - Strings and opaque data are padded with zero bytes to 4-byte boundaries
//   - Unions are a 4-byte discriminant followed by the selected arm's payload
//
// The Decoder treats its input as untrusted: every length and count prefix is
// validated against the remaining input and a configured maximum before any
// allocation, union discriminants are checked against the data-model's known
// variant set, and nesting depth is bounded by an explicit counter. The
// tunable limits are documented on the Option values; all other wire rules
// are fixed by the format.
//
// An Encoder or Decoder is a single-pass value and is not safe for use from
// multiple goroutines, but independent instances share no state and may be
// used concurrently without synchronization.
//
// Reference: RFC 4506 - XDR: External Data Representation Standard
// https://tools.ietf.org/html/rfc4506
package xdr
