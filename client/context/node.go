package context

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	sdk "github.com/hbtc-chain/govledger/types"
)

// Node is the backend a CLIContext talks to. The REST server serves it
// in-process and the CLI reaches it over HTTP.
type Node interface {
	Query(path string, data []byte, height int64) ([]byte, int64, error)
	BroadcastTx(txBytes []byte) (sdk.TxResponse, error)
	Status() (NodeStatus, error)
}

// NodeStatus describes the latest committed block.
type NodeStatus struct {
	ChainID      string    `json:"chain_id"`
	LatestHeight int64     `json:"latest_height"`
	LatestHash   string    `json:"latest_app_hash"`
	LatestTime   time.Time `json:"latest_block_time"`
}

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Path   string `json:"path"`
	Data   []byte `json:"data,omitempty"`
	Height int64  `json:"height,omitempty"`
}

// QueryResponse is the reply of POST /query.
type QueryResponse struct {
	Code      sdk.CodeType      `json:"code"`
	Codespace sdk.CodespaceType `json:"codespace,omitempty"`
	Log       string            `json:"log,omitempty"`
	Value     json.RawMessage   `json:"value,omitempty"`
	Height    int64             `json:"height"`
}

// BroadcastRequest is the body of POST /txs. Tx holds the amino JSON of a
// signed StdTx.
type BroadcastRequest struct {
	Tx json.RawMessage `json:"tx"`
}

// HTTPNode reaches a node over its REST endpoint.
type HTTPNode struct {
	uri    string
	client *http.Client
}

var _ Node = (*HTTPNode)(nil)

func NewHTTPNode(uri string) *HTTPNode {
	if !strings.HasPrefix(uri, "http://") && !strings.HasPrefix(uri, "https://") {
		uri = "http://" + uri
	}
	return &HTTPNode{
		uri:    strings.TrimRight(uri, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (n *HTTPNode) Query(path string, data []byte, height int64) ([]byte, int64, error) {
	var res QueryResponse
	if err := n.post("/query", QueryRequest{Path: path, Data: data, Height: height}, &res); err != nil {
		return nil, 0, err
	}
	if !res.Code.IsOK() {
		return nil, res.Height, sdk.ErrorFromResult(sdk.Result{Code: res.Code, Codespace: res.Codespace, Log: res.Log})
	}
	return res.Value, res.Height, nil
}

func (n *HTTPNode) BroadcastTx(txBytes []byte) (sdk.TxResponse, error) {
	var res sdk.TxResponse
	err := n.post("/txs", BroadcastRequest{Tx: txBytes}, &res)
	return res, err
}

func (n *HTTPNode) Status() (NodeStatus, error) {
	var status NodeStatus
	resp, err := n.client.Get(n.uri + "/node_info")
	if err != nil {
		return status, errors.Wrap(err, "node unreachable")
	}
	defer resp.Body.Close()
	err = decodeResponse(resp, &status)
	return status, err
}

func (n *HTTPNode) post(route string, body, out interface{}) error {
	bz, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := n.client.Post(n.uri+route, "application/json", bytes.NewReader(bz))
	if err != nil {
		return errors.Wrap(err, "node unreachable")
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	bz, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("node returned %d: %s", resp.StatusCode, strings.TrimSpace(string(bz)))
	}
	return json.Unmarshal(bz, out)
}
