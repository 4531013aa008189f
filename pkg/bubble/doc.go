// Package bubble lays out the speech or thought bubble drawn above a figure.
//
// Rendering happens in four steps:
//
//  1. Wrap: the message is cut into lines of at most Width runes, breaking
//     after the last space that fits. A run with no space is hard-broken at
//     Width.
//  2. Decorate: every line is framed with the border glyphs of the Style,
//     picked by its position (single, top, middle, bottom).
//  3. Pad: spaces are inserted before the closing glyph until every line is
//     as long as the longest one.
//  4. Rule: a top rule of '_' and a bottom rule of '-' close the box.
//     A rule is one space, longest-2 fill characters and one trailing space,
//     so it is exactly as long as the longest line (" _____ " over
//     "< moo >"). Classic renderings drop the trailing space and are one
//     column shorter.
//
// The message is treated as one flat stream of characters. Newlines inside it
// are not line breaks.
package bubble
