// Package alloc simulates a flat memory space for display.
//
// Heap is a bump allocator over logical offsets: each Malloc places its
// record at the end of the last live allocation (or 0), so offsets never
// decrease along the live list and freed space is only reused once every
// later allocation is gone. Offsets are illustrative and never back real
// memory.
//
// Handles are generation-checked: a Ptr names a slot plus the generation it
// was issued under. Free unlinks the record from the live list in O(1),
// bumps the slot generation so every copy of the handle goes stale, and then
// runs the value's Dealloc hook, which may free owned children (a String
// frees its Chars buffer). Other live handles are never invalidated.
//
// A Heap is not safe for concurrent use.
package alloc
