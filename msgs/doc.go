// Package msgs defines the structured message schemas that flow on the
// simulation bus, the registry that maps wire type names to message
// prototypes and variable prefixes, and the field flattening used to map
// nested message fields onto flat model variable names.
package msgs
