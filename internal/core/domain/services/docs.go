// Package services provides domain services that span more than one aggregate
// of the waste collection domain.
//
// The package includes:
//   - CertificateIssuer: builds the verification token and the Certificate of
//     a completed collection request
package services
