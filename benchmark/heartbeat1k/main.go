package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"patientpulse.xyz/hospital-admin-service/pkg/common"
	"patientpulse.xyz/hospital-admin-service/pkg/models"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	devices := make([]models.Device, maxDevices)
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			devices[i] = registerDevice()
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	deviceIDs := common.Mapper(devices, func(d models.Device) uint { return d.ID })

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func registerDevice() models.Device {
	payload := map[string]string{
		"name":        "Benchmark Telemetry Unit",
		"device_code": uuid.NewString(),
		"board_type":  "esp32",
		"location":    fmt.Sprintf("Ward %v", rnd.Int31n(20)+1),
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/devices", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("device registration failed with status %v", resp.StatusCode))
	}

	var device models.Device
	if err := json.NewDecoder(resp.Body).Decode(&device); err != nil {
		panic(err)
	}
	return device
}

func doAction(deviceID uint) {
	actions := []func(){
		genHeartbeatAction(deviceID),
		genGetAlertsAction(deviceID),
		genHeartbeatAction(deviceID),
	}
	actionNames := []string{
		"Heartbeat",
		"GetAlerts",
		"Heartbeat",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genHeartbeatAction(deviceID uint) func() {
	return func() {
		// Uniform 0-100 signal so some heartbeats cross the alert thresholds
		payload := map[string]any{
			"signal_strength": int(rnd.Int31n(101)),
			"data":            map[string]any{"battery": rndFloat64(0.0, 100.0, 2)},
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/devices/%v/heartbeat", httpHostPort, deviceID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetAlertsAction(deviceID uint) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/devices/%v/alerts", httpHostPort, deviceID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
