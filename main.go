package main

import "net/http"

func main() {
	config := LoadConfig()
	server := NewServer()
	handler := NewHTTPServer(server, config.StaticDir)
	LogStartedServer(config.Port)
	http.ListenAndServe(":"+config.Port, handler)
}
