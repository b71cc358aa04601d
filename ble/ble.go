// Package ble documents the BLE GATT surface that a BT-B36 printer-emulator
// peripheral must expose to a central device, and the contract a caller of
// escpos.Decoder must honor when wiring responses back onto it.
//
// It implements no transport. Advertising, GATT service/characteristic
// registration, connection handling, and notify plumbing are the BLE
// peripheral stack's job, not this package's — see spec.md §1's Out of
// scope list.
package ble

// UUIDs advertised by the BT-B36 emulator.
const (
	ServiceUUID         = "0000ff00-0000-1000-8000-00805f9b34fb"
	WriteCharUUID       = "0000ff02-0000-1000-8000-00805f9b34fb"
	NotifyCharUUID      = "0000ff01-0000-1000-8000-00805f9b34fb"
	AdvertisedLocalName = "BT-B36"
)

// DefaultACK is the one-byte acknowledgement a caller sends on the notify
// characteristic when a write produced no scripted response but did decode
// at least one non-malformed command (spec.md §6).
var DefaultACK = []byte{0x00}

// Notifier is what a real GATT write-characteristic handler must implement
// to deliver escpos.Decoder's output back to the central device. A
// conforming caller, on every write:
//
//  1. calls escpos.Decoder.Feed with the write payload;
//  2. calls Notify once per response Feed returned, in order;
//  3. if Feed returned no responses and at least one decoded command was
//     not Malformed, calls Notify(DefaultACK) exactly once.
//
// Malformed-only bursts get no notification at all.
type Notifier interface {
	Notify(data []byte) error
}
