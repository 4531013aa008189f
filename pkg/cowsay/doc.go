// Package cowsay ties the bubble and figure renderers together.
//
// A Request describes one rendering: the message, the figure to use and the
// glyph choices. A Sayer resolves the figure template, renders the bubble and
// the figure, and returns them as a Speech. The two parts share no state;
// they are only printed one after the other.
//
//	s := cowsay.NewSayer(cows.NewResolver(cows.Embedded()))
//	speech, err := s.Say(cowsay.NewRequest("moo"))
//	fmt.Print(speech)
package cowsay
