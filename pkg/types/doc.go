// Package types defines the Store, Catalog, and Customers interfaces, the
// menu and customer entity types, and the standard errors for the cafe
// console.
//
// A Store owns one Catalog (section -> item -> price) and one Customers
// table (record ID -> record). Backends live under internal/ and are
// selected by Config.Backend.
package types
