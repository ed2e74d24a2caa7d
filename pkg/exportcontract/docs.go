// Package exportcontract defines the Palette data contract that format
// emitters (CSS tokens, JSON documents, Tailwind/Radix/Panda/shadcn
// configs) consume. It owns canonical slot ordering, the Radix-to-Tailwind
// step mapping, alpha-channel and Display P3 scale derivation, and JSON
// snapshot persistence. It does not implement any emitter itself.
package exportcontract
