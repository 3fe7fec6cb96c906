// Package record turns a sheet file into a stream of translation records.
//
// A sheet file is CSV. The first rows carry format comments, the config name,
// the config value and the column names; they are discarded. Every following
// row is one Record built from its first four columns.
package record
