package reader

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var DEFAULT_ADDRESS string = "0x0000000000000000000000000000000000000000"

// EthReader reads contract state on one network through a set of RPC nodes.
// Every read is raced across all nodes, first success wins, so a single slow
// or broken node doesn't fail the invocation.
type EthReader struct {
	nodes map[string]*OneNodeReader
}

func NewEthReaderGeneric(nodes map[string]string) *EthReader {
	ns := map[string]*OneNodeReader{}
	for name, c := range nodes {
		ns[name] = NewOneNodeReader(name, c)
	}
	return &EthReader{
		nodes: ns,
	}
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

type readContractToBytesResponse struct {
	Data  []byte
	Error error
}

func (er *EthReader) ReadContractToBytes(
	atBlock int64,
	from string,
	caddr string,
	a *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	resCh := make(chan readContractToBytesResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			data, err := n.ReadContractToBytes(atBlock, from, caddr, a, method, args...)
			resCh <- readContractToBytesResponse{
				Data:  data,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Data, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

func (er *EthReader) ReadContractWithABI(
	result interface{},
	caddr string,
	a *abi.ABI,
	method string,
	args ...interface{},
) error {
	responseBytes, err := er.ReadContractToBytes(-1, DEFAULT_ADDRESS, caddr, a, method, args...)
	if err != nil {
		return err
	}
	return a.UnpackIntoInterface(result, method, responseBytes)
}

// AddressFromContractWithABI reads a single address return value. It is the
// contract-call capability the deriver needs for the EVM path.
func (er *EthReader) AddressFromContractWithABI(
	contract string,
	a *abi.ABI,
	method string,
	args ...interface{},
) (common.Address, error) {
	result := common.Address{}
	err := er.ReadContractWithABI(&result, contract, a, method, args...)
	return result, err
}
