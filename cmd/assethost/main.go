// cmd/assethost/main.go
package main

import (
	"flag"
	"fmt"
	"go-bouncing-ball/internal/config"
	"log"
	"net/http"
)

// Сборка страницы: go generate ./cmd/assethost кладёт в web/ wasm-сборку
// анимации и загрузчик wasm_exec.js из GOROOT.
//go:generate env GOOS=js GOARCH=wasm go build -o ../../web/bounce.wasm ../bounce
//go:generate cp $GOROOT/lib/wasm/wasm_exec.js ../../web/wasm_exec.js

// generatedAssets — файлы web/, которые создаёт go generate, а не репозиторий
var generatedAssets = []string{"bounce.wasm", "wasm_exec.js"}

// Отдаёт страницу и wasm-сборку анимации, никакой логики на сервере
func main() {
	port := flag.Int("port", config.AssetPort, "HTTP port")
	dir := flag.String("dir", config.AssetDir, "directory with static assets")
	flag.Parse()

	log.Printf("Game on port: %d", *port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), newHandler(*dir)))
}

func newHandler(dir string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(dir)))
	return mux
}
