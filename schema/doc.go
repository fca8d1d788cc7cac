// Package schema describes the wire layout of a cadbin document.
//
// A FlatBuffers table is a list of slots. cadbin builds each table's slot list from layers:
// one per domain structure that the table carries. Element tables stack the kind layer, the
// shared ElementBase layer, any further shared layers (StackBase, LinearBase) and finally the
// variant's own fields:
//
//	frame := schema.ElementLayout(model.TypeFrame)
//	frame.Start(schema.LayerElementBase) // 1
//	frame.Start(schema.LayerStack)       // 1 + number of ElementBase fields
//
// Composition rejects a layout in which two layers contribute the same wire name, which is
// how StackBase ended up with its stack_ prefix. All layouts are package-level variables
// built with MustCompose, so a collision stops the program at start-up instead of producing
// a buffer with two meanings for one name.
package schema
