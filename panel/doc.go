// Package panel reads user input documents into field definitions.
//
// A document holds one panel element per user input panel:
//
//	<userInput>
//	  <panel id="database">
//	    <field type="title" txt="Database"/>
//	    <field type="text" variable="db.host"><spec txt="Host:"/></field>
//	  </panel>
//	</userInput>
//
// Every field is read with field.Reader using the Policy its type needs.
package panel
