// Package certificate provides the final disposal Certificate: the immutable
// proof that a collection request was completed by a given collector.
//
// Key business rules:
//   - Exactly one certificate exists per Completed request
//   - The verification token is unique across all certificates
//   - Certificates are never modified after issuance
package certificate
