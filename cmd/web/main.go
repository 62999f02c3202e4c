// @title           Easy Life Gangtok API
// @version         1.0
// @description     Backend for the Easy Life Gangtok local services marketplace.
// @contact.name    Easy Life Gangtok
// @contact.email   support@easylifegangtok.com
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "easylife_backend/internal/app"

func main() {
	app.Run()
}
