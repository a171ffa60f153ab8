// Package guides collects strategy resources for a commander: the EDHREC deck
// tech article when one exists, the EDHREC commander page and a Moxfield
// primer search.
package guides
