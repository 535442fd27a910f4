// Package parcel models a shipping package stored in the depot.
//
// A Package is born InStorage bound to one warehouse slot and may move to
// Shipped, which drops the slot reference. The package is named parcel because
// "package" is a Go keyword.
package parcel
