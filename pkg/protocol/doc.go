// Package protocol defines the messages exchanged between the landing page's
// thin client and the server over a WebSocket.
//
// Every message is one JSON frame:
//
//	{"t":"event","seq":7,"d":{"type":"scroll","y":120}}
//
// t is the frame type, seq a per-direction sequence number and d the
// type-specific payload.
//
// # Frame Types
//
//   - FrameHello (server → client): session id after upgrade
//   - FrameEvent (client → server): UI events (scroll, click, visible)
//   - FramePatches (server → client): DOM patches
//   - FramePing / FramePong: heartbeat, either direction
//   - FrameError (server → client): rejected frame or event
//   - FrameClose: orderly shutdown, either direction
//
// # Patches
//
// Patches address elements by id. Replace swaps a region's outer HTML,
// Class adds or removes one class, Attr sets one attribute.
package protocol
