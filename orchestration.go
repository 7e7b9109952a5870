// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The O-SRP Authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package osrp

import "encoding/hex"

// OPRFEvaluator is the capability RegisterWithServers and LoginWithServers need from each
// OPRF-sharded server: rate-limited blind evaluation, keyed by username. *SRPServer satisfies
// this directly; it is its own interface so a caller can shard OPRF evaluation across remote
// servers reached over whatever transport they choose (spec §1's "out of scope" transport
// boundary) without those servers also being full SRPServer instances.
type OPRFEvaluator interface {
	PerformOPRFEval(username string, serializedRequest []byte) ([]byte, error)
}

// RegisterWithServers runs the client-driven registration state machine of spec §4.8 against n
// OPRF evaluators in a fixed order: derive the private key and private verifier, blind-evaluate
// once per server, fold v' and every finalized output into the verifier hash, and derive the
// public verifier. The returned UserRecord is ready to hand to a UserRecordStore.
func RegisterWithServers(client *SRPClient, servers []OPRFEvaluator, username, password string) (UserRecord, error) {
	salt, err := client.GenerateSalt()
	if err != nil {
		return UserRecord{}, err
	}

	sk, err := client.DerivePrivateKey(salt, username, password)
	if err != nil {
		return UserRecord{}, err
	}

	privateVerifier, err := client.DerivePrivateVerifier(sk)
	if err != nil {
		return UserRecord{}, err
	}

	outputs, err := evaluateAcrossServers(client, servers, username, privateVerifier)
	if err != nil {
		return UserRecord{}, err
	}

	hashParts := append([]string{hex.EncodeToString(privateVerifier)}, outputs...)

	x, err := client.DeriveVerifierHash(hashParts...)
	if err != nil {
		return UserRecord{}, err
	}

	v, err := client.DerivePublicVerifier(x)
	if err != nil {
		return UserRecord{}, err
	}

	return UserRecord{Username: username, Salt: salt, Verifier: v}, nil
}

// LoginWithServers runs the login state machine of spec §4.8 end to end, in-process: it drives
// both the client and the primary SRPServer (the holder of record) through ephemeral exchange,
// re-derives the verifier hash against the same n OPRF evaluators registration used, and
// verifies both proofs. It returns the session key on success. Callers talking to servers over
// a real transport will drive the client/server halves separately instead of calling this; it
// exists primarily to exercise the full protocol in tests.
func LoginWithServers(
	client *SRPClient,
	server *SRPServer,
	oprfServers []OPRFEvaluator,
	record UserRecord,
	password string,
) (sessionKeyHex string, err error) {
	clientEphemeral, err := client.GenerateEphemeral()
	if err != nil {
		return "", err
	}

	serverEphemeral, err := server.GenerateEphemeral(record.Verifier)
	if err != nil {
		return "", err
	}

	sk, err := client.DerivePrivateKey(record.Salt, record.Username, password)
	if err != nil {
		return "", err
	}

	privateVerifier, err := client.DerivePrivateVerifier(sk)
	if err != nil {
		return "", err
	}

	outputs, err := evaluateAcrossServers(client, oprfServers, record.Username, privateVerifier)
	if err != nil {
		return "", err
	}

	hashParts := append([]string{hex.EncodeToString(privateVerifier)}, outputs...)

	x, err := client.DeriveVerifierHash(hashParts...)
	if err != nil {
		return "", err
	}

	clientSession, err := client.DeriveSession(
		clientEphemeral.Secret, serverEphemeral.Public, record.Salt, record.Username, x)
	if err != nil {
		return "", err
	}

	serverSession, err := server.DeriveSession(
		serverEphemeral.Secret, clientEphemeral.Public, record.Salt, record.Username,
		record.Verifier, clientSession.M)
	if err != nil {
		return "", err
	}

	if err := client.VerifySession(clientEphemeral.Public, clientSession, serverSession.P); err != nil {
		return "", err
	}

	return clientSession.K, nil
}

func evaluateAcrossServers(client *SRPClient, servers []OPRFEvaluator, username string, input []byte) ([]string, error) {
	outputs := make([]string, 0, len(servers))

	for _, srv := range servers {
		state, req, err := client.BlindEvalOPRFInput(input)
		if err != nil {
			return nil, err
		}

		resp, err := srv.PerformOPRFEval(username, req)
		if err != nil {
			return nil, err
		}

		out, err := client.FinalizeOPRF(state, resp)
		if err != nil {
			return nil, err
		}

		outputs = append(outputs, out)
	}

	return outputs, nil
}
