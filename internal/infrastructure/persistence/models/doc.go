// Package models contains the GORM persistence models.
//
// Domain entities stay free of persistence concerns; each model here maps
// one table and converts to and from its domain counterpart. AutoMigrate
// targets and SQL migrations both follow these definitions.
package models
