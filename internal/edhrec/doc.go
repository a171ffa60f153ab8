// Package edhrec reads commander card statistics from EDHREC's JSON pages.
//
// Every commander has one page at {json_url}/pages/commanders/{slug}.json
// holding several card lists ("High Synergy Cards", "Top Cards",
// "Creatures", ...). FetchCategory requests the page and returns the list
// matching one Category.
package edhrec
