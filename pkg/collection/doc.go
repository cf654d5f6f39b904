// Package collection loads the full row set from the archive.
//
// A load is one bulk find at series level followed by a bounded parallel
// fan-out through the aggregator, one task per match. Tasks are independent:
// no ordering is guaranteed between series and one series failing to shape
// never affects its siblings. The row set is rebuilt wholesale on every
// load; nothing is patched in place between loads.
package collection
