// Package queries implements the read side: request listings, registry
// listings and the environmental reports.
//
// Handlers run raw SQL against a *gorm.DB and never write. Every report
// counts a collection only when its request is Completed and a certificate
// row exists for it, so the totals of the overview, by-waste-type and
// by-site reports agree with each other. Statements are portable between
// PostgreSQL and SQLite.
package queries
