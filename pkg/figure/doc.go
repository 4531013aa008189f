// Package figure turns a raw figure template into the ASCII art printed under
// the bubble.
//
// A template is plain text with a few conventions inherited from the classic
// cow file format:
//
//	## comment lines start with two hashes
//	$the_cow = <<"EOC";
//	        $thoughts   ^__^
//	         $thoughts  ($eyes)\\_______
//	EOC
//
// Lines starting with "##" and lines containing the EOC marker are dropped.
// The placeholders $eyes, $thoughts and $tongue are replaced by the glyphs of
// a Glyphs value, and the escapes \\ and \@ collapse to \ and @.
package figure
