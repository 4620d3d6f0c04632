// Package courier contains the courier directory entry.
//
// Couriers are onboarded by administrators and referenced by orders during
// acceptance and delivery. The package keeps the entity minimal: identity,
// display handle and onboarding provenance.
package courier
