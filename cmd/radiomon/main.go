package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/golang/glog"

	fx "github.com/fieldlink/radiolink/pkg/framework"
	"github.com/fieldlink/radiolink/pkg/link"
	"github.com/fieldlink/radiolink/pkg/link/mqtt"
	"github.com/fieldlink/radiolink/pkg/link/serial"
)

var (
	device  string
	baud    = serial.DefaultBaudRate
	mqttURL = "mqtt://localhost:1883/radio/"
)

// frameTopic carries a JSON envelope per received frame, for
// dashboards and logging. The rx topic carries the raw frame bytes for
// remote links bridged over mqtt.Transport.
const frameTopic = "frames"

func init() {
	if val := os.Getenv("RADIOLINK_DEVICE"); val != "" {
		device = val
	}
	if val := os.Getenv("RADIOLINK_BAUD"); val != "" {
		if b, err := strconv.Atoi(val); err == nil {
			baud = b
		}
	}
	if val := os.Getenv("RADIOLINK_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&device, "device", device, "Serial device of the radio module.")
	flag.IntVar(&baud, "baud", baud, "Serial baud rate.")
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

type frameMsg struct {
	Type    byte   `json:"type"`
	FrameID byte   `json:"frame_id"`
	Body    string `json:"body"`
}

func main() {
	flag.Parse()
	if device == "" {
		glog.Exit("no device specified")
	}

	port, err := serial.Open(device, baud)
	if err != nil {
		glog.Exitf("open %s: %v", device, err)
	}
	defer port.Close()
	l := link.New(port)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		glog.Exit(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		glog.Exitf("connect %s: %v", mqttURL, token.Error())
	}
	defer q.Close()

	// Payloads arriving on the tx topic go out over the radio verbatim.
	sub := q.Sub(mqtt.DefaultTxTopic, func(_ string, payload []byte) {
		if err := l.Write(payload); err != nil {
			glog.Errorf("radio write: %v", err)
		}
	})
	defer sub.Close()

	err = fx.NewRunner().
		HandleSignals().
		Go(fx.NamedRun("receive", fx.RunnableFunc(func(ctx context.Context) error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				raw, err := l.ReceiveFrame(time.Second)
				if err == link.ErrTimeout {
					continue
				}
				if err != nil {
					// Bad delimiter or checksum means the stream is
					// misaligned; drop buffered input to resync.
					glog.Warningf("receive: %v", err)
					if err = port.Flush(); err != nil {
						return err
					}
					continue
				}
				if b, err := raw.Bytes(); err == nil {
					q.Pub(mqtt.DefaultRxTopic, b)
				}
				msg, _ := json.Marshal(&frameMsg{
					Type:    raw.Type,
					FrameID: raw.FrameID,
					Body:    hex.EncodeToString(raw.Body),
				})
				q.Pub(frameTopic, msg)
			}
		}))).
		Wait()
	if err != nil {
		glog.Exit(err)
	}
}
