package main

import (
	"crypto/rand"
	"fmt"
	mrand "math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:5000/api/orders/"

// Идентификатор существующего заказа можно передать первым аргументом
func main() {
	fixedID := randomUUID()
	if len(os.Args) > 1 {
		fixedID = os.Args[1]
	}

	for {
		var wg sync.WaitGroup
		for range mrand.Intn(10) {
			wg.Go(func() { doRequest(fixedID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomUUID() string {
	b := make([]byte, 16)
	rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

func doRequest(fixedID string) {
	id := fixedID
	switch mrand.Intn(5) {
	case 0:
		id = randomUUID()
	case 1:
		id = "not-a-uuid"
	}

	url := baseURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
