// Package xml implements config.Parser for XML documents such as user input
// specs and langpacks.
//
// Paths name elements below the document root, separated by colons:
//
//	"panel"          -> first <panel> child of the root
//	"panel:field"    -> first <field> of that panel
//	""               -> the entire document
//
// The selected element is decoded with encoding/xml, so targets may be
// tagged structs or *element.Node.
package xml
