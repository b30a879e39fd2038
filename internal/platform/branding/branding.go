// Package branding centralizes product naming used across surfaces.
package branding

// AppName is the public product name.
const AppName = "Whisperly"

// CompanyName is the legal entity behind the product.
const CompanyName = "Sudobility"

// AppDomain is the canonical public domain.
const AppDomain = "whisperly.io"

// SupportEmail is the public support contact.
const SupportEmail = "support@whisperly.io"
