// Package kwsource reads keyword sources: plain word lists with one keyword
// per line, and the keyword tables of the Firebird C++ sources
// (keywords.cpp), whose literal layout changed between releases.
//
// All readers return lazy sequences. A file is opened when iteration starts
// and closed when iteration ends, including when the consumer stops early or
// an error is yielded. Sources are single-byte and decoded as ISO-8859-1.
//
// Lines of a keywords.cpp file that do not match the grammar of the selected
// release are skipped; they are comments, declarations or code.
package kwsource
