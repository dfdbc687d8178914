// Package crowdfund provides a set of functions and types for managing
// crowdfunding projects owned by registered accounts. It is designed to be
// local-first and auditable: all state lives in two human-readable JSON
// files that are fully rewritten after every mutation.
//
// The core functionalities include:
//   - Account Registry: registering accounts (unique email, validated
//     contact details) and authenticating against the stored credential.
//   - Project Ledger: an ordered record of projects supporting append,
//     in-place partial edit, and positional delete, with every operation
//     gated by an ownership check against the session identity.
//   - Field Validation: pure validators for names, emails, phone numbers,
//     amounts and date-times, decoupled from console prompting so they are
//     testable in isolation.
//   - Data Persistence: encoding and decoding both stores to and from
//     whole-file JSON documents.
//
// This package serves as the foundational logic for the `cfs` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package crowdfund
