// Package loader reads records from YAML data files and hands them to a
// [Handler], one at a time, in file order.
//
// A data file is either a bare sequence of records or a mapping with a
// records key. JSON files are accepted as YAML.
//
// Example data file:
//
//	records:
//	  - id: Bulbasaur
//	    attack: 50
//	    defense: 10
//	  - id: ${STARTER:-Charmander}
//	    attack: 52
//	    defense: 43
//
// Environment variable references (${VAR} or ${VAR:-default}) are expanded
// before parsing. The only validation applied to a record is that its ID
// is not empty; the whole file is checked before any record is delivered.
package loader
