// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
)

// errors local to the command line client
var (
	ErrIdentityNameAlreadyExists = fault.ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = fault.NotFoundError("identity name not found")
	ErrNotPrivateKey             = fault.InvalidError("identity has no private key")
	ErrWrongPassword             = fault.InvalidError("wrong password")
	ErrCryptoFailed              = fault.ProcessError("encryption failed")
	ErrInvalidSaltLength         = fault.InvalidError("invalid salt length")
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Connect         string              `json:"connect"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
//
// Data and Salt are blank for a receive only identity
type Identity struct {
	Description  string `json:"description"`
	Address      string `json:"address"`
	PublicKeyPem string `json:"public_key_pem"`
	Data         string `json:"data"`
	Salt         string `json:"salt"`
}

// InfoIdentity - restricted view of an identity
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Private     bool   `json:"private"`
}

// InfoConfiguration - restricted view of configuration
type InfoConfiguration struct {
	DefaultIdentity string         `json:"default_identity"`
	Connect         string         `json:"connect"`
	Identities      []InfoIdentity `json:"identities"`
}

// New - empty configuration for setup
func New(connect string) *Configuration {
	return &Configuration{
		Connect:    connect,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	options := &Configuration{}

	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// generic JSON decoder
func readConfiguration(filename string, options interface{}) error {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return err
	}

	f, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	err = dec.Decode(options)
	if nil != err {
		return err
	}

	return nil
}

// Info - the configuration without any private data, sorted by name
func (config *Configuration) Info() *InfoConfiguration {
	info := &InfoConfiguration{
		DefaultIdentity: config.DefaultIdentity,
		Connect:         config.Connect,
		Identities:      make([]InfoIdentity, 0, len(config.Identities)),
	}
	for name, id := range config.Identities {
		info.Identities = append(info.Identities, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Address:     id.Address,
			Private:     "" != id.Data,
		})
	}
	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})
	return info
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, ErrIdentityNameNotFound
	}

	return &id, nil
}

// Private - find identity and decrypt its key for a given name
func (config *Configuration) Private(password string, name string) (*identity.KeyPair, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity, a blank key generates a new one
func (config *Configuration) AddIdentity(name string, description string, privateKeyPem string, password string) (*identity.KeyPair, error) {

	if _, ok := config.Identities[name]; ok {
		return nil, ErrIdentityNameAlreadyExists
	}

	var key *identity.KeyPair
	var err error
	if "" == privateKeyPem {
		key, err = identity.NewKeyPair()
	} else {
		key, err = identity.KeyPairFromPEM(privateKeyPem)
	}
	if nil != err {
		return nil, err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return nil, err
	}

	encrypted, err := encryptData(key.PrivateKeyPEM, secretKey)
	if nil != err {
		return nil, err
	}

	config.Identities[name] = Identity{
		Description:  description,
		Address:      key.Address,
		PublicKeyPem: key.PublicKeyPEM,
		Data:         encrypted,
		Salt:         salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return key, nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, publicKeyPem string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	address, err := identity.AddressFromPEM(publicKeyPem)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description:  description,
		Address:      address,
		PublicKeyPem: publicKeyPem,
		Data:         "",
		Salt:         "",
	}

	return nil
}

// ChangePassword - re-encrypt the key of an identity
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	key, err := config.Private(oldPassword, name)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(newPassword)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(key.PrivateKeyPEM, secretKey)
	if nil != err {
		return err
	}

	id := config.Identities[name]
	id.Data = encrypted
	id.Salt = salt.String()
	config.Identities[name] = id

	return nil
}
