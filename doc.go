// Package vavoping fetches the current balances of a Bitvavo account,
// values them in a reporting currency, and delivers the resulting summary
// to a Telegram chat.
//
// The package is built around a single straight-line flow:
//   - Fetch: retrieve balances from the exchange (package bitvavo).
//   - Value: resolve a price per asset and accumulate a total (Summary).
//   - Format: render the summary as a chat-ready text (package renderer).
//   - Send: deliver the text to a Telegram chat (package telegram).
//
// It owns no durable state: a Summary is built fresh on every run and
// discarded once the message is delivered. The Notifier type wires the
// flow together, and the two failure modes it distinguishes,
// ErrExchangeUnavailable and ErrNotificationDeliveryFailed, are the whole
// error contract.
//
// This package serves as the foundational logic for the `vp` command-line
// tool, designed to be run on a schedule by an external trigger such as a
// CI job.
package vavoping
