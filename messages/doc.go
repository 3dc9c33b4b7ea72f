// Package messages provides the locale-keyed message table used to resolve
// the id attribute of labels, descriptions and validator messages.
//
// Tables are read from installer langpacks:
//
//	<langpack>
//	  <str id="db.host.label" txt="Database host"/>
//	</langpack>
//
// or from a flat YAML mapping of id to text:
//
//	db.host.label: Database host
package messages
