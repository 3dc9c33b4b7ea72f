// Package field reads the configuration of user input fields.
//
// A field is declared as an element of the user input document:
//
//	<field type="text" variable="db.host" conditionid="useDatabase">
//	  <description id="db.host.description"/>
//	  <spec id="db.host.label" txt="Host:" size="20" set="localhost" revalidate="true">
//	    <processor class="Trim"/>
//	  </spec>
//	  <validator class="NotEmpty" id="db.host.required"/>
//	  <createForPack name="Database"/>
//	  <os family="unix"/>
//	</field>
//
// Reader exposes typed accessors over such an element. Readers are views over
// an already parsed tree: they hold no mutable state and are meant to be built
// and discarded within a single pass over the document.
//
// Mandatory attributes and elements fail with ErrMissingAttribute or
// ErrMissingElement. Every other absence degrades to an absent value, -1 for
// sizes or false for flags. Values that cannot be converted are logged with
// ErrInvalidValue and replaced by the default.
package field
