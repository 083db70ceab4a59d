// Package users provides the vocabulary for user account classification.
//
// User accounts carry a type that determines how the platform treats them:
//   - regular: a normal human account
//   - system: an internal account owned by the platform itself
//   - bot: an automated account operated on behalf of a human
//
// The package registers its sets in the default enum catalog via init();
// importing it (blank import is enough) makes the vocabulary visible to
// catalog consumers such as the enumkit CLI.
package users
