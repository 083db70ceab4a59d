// Package pages provides the vocabularies for page relationships and
// revision history.
//
// Pages link to each other through typed connections (wiki links,
// includes, component usage, redirects), and every change to a page is
// recorded as a typed revision. Both classifications are closed sets
// declared here.
//
// The package registers its sets in the default enum catalog via init().
package pages
