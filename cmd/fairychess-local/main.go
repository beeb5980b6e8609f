package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"fairychess/internal/engine"
	"fairychess/internal/fairy"
	"fairychess/internal/server/game"
	httpserver "fairychess/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 无图形界面时会失败，忽略
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "", "directory with a front-end to serve at /")
	level := flag.String("level", "medium", "default difficulty: easy, medium, hard, expert")
	thinkTime := flag.Duration("time", 3*time.Second, "expert think time per move")
	idle := flag.Duration("idle", 2*time.Hour, "drop games untouched for this long")
	browser := flag.Bool("open", false, "open the default browser")
	flag.Parse()

	lv, err := engine.ParseDifficulty(*level)
	if err != nil {
		log.Fatal(err)
	}

	m := game.NewManager()
	m.Level = lv
	m.TimeLimit = *thinkTime

	go func() {
		for range time.Tick(10 * time.Minute) {
			if n := m.Prune(*idle); n > 0 {
				log.Printf("pruned %d idle games", n)
			}
		}
	}()

	srv := httpserver.NewServer(m, *webDir)
	log.Printf("listening on %s, variants %v, level %s", *addr, fairy.VariantNames(), lv)

	if *browser {
		// 延迟一下再开浏览器，等服务器起来
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
