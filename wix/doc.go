// Package wix reads works hosted on Wix sites.
//
// Wix pages ship almost no text in their markup. Instead an inline script
// assigns a JSON configuration blob to publicModel, which lists every page
// of the site together with the file name of its JSON resource and a URL
// template for the content-delivery API. The package discovers those
// endpoints once per work and then reconstructs each chapter from its API
// response.
package wix
