// @title           TenderLink API
// @version         1.0
// @description     Tendering marketplace backend: signup with email verification, tender postings, and bidder notifications.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "tenderlink_backend/internal/app"

func main() {
	app.Run()
}
