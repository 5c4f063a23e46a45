// Package timesheet holds the pure attendance arithmetic: pairing check-ins
// with check-outs, summing session durations, and converting recorded civil
// times into UTC instants. Nothing here touches the store.
package timesheet
