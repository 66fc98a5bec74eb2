package channel

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

// CreateChannel registers a channel and the committees handling it.
func CreateChannel(ctx context.Context, c chain.Client, info []byte, connections []chain.Encoded, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallCreateChannel, info, connections)
	return c.SubmitSignedAndWatch(ctx, call, nonce)
}

// BindCommittees attaches more committees to an existing channel.
func BindCommittees(ctx context.Context, c chain.Client, channelID uint32, connections []chain.Encoded, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallBindCommittees, channelID, connections)
	return c.SubmitSignedAndWatch(ctx, call, nonce)
}

// SubmitTransaction imports a new cross-chain transaction for committee cid.
func SubmitTransaction(ctx context.Context, c chain.Client, channelID, cid uint32, msg []byte, source chain.Encoded, watch bool, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallImportNewTx, channelID, cid, msg, source)
	return chain.Submit(ctx, c, call, watch, nonce)
}

// ImportNewSrcHash records a source chain hash for committee cid.
func ImportNewSrcHash(ctx context.Context, c chain.Client, cid uint32, hash []byte, srcChainID uint32, uid []byte, watch bool, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallImportNewSourceHash, cid, hash, srcChainID, uid)
	return chain.Submit(ctx, c, call, watch, nonce)
}

func reportResultCall(pk, sig []byte, cid uint32, forkID uint8, hash chain.Hash, signature []byte) chain.Call {
	return chain.NewCall(Pallet, CallSubmitTxSignResult, pk, sig, cid, forkID, hash, signature)
}

// ReportResult submits a committee's signing result as an unsigned extrinsic.
func ReportResult(ctx context.Context, c chain.Client, pk, sig []byte, cid uint32, forkID uint8, hash chain.Hash, signature []byte) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, reportResultCall(pk, sig, cid, forkID, hash, signature))
}

// ReportResultCallBytes returns the unsigned extrinsic ReportResult would submit.
func ReportResultCallBytes(ctx context.Context, c chain.Client, pk, sig []byte, cid uint32, forkID uint8, hash chain.Hash, signature []byte) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, reportResultCall(pk, sig, cid, forkID, hash, signature))
}

// RequestSign asks committee cid to sign the transaction identified by hash.
func RequestSign(ctx context.Context, c chain.Client, cid uint32, hash chain.Hash, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallRequestSign, cid, hash)
	return c.SubmitSignedAndWatch(ctx, call, nonce)
}

// SyncStatus marks a transaction of committee cid as settled on the target chain.
func SyncStatus(ctx context.Context, c chain.Client, cid uint32, hash []byte, watch bool, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallSyncStatus, cid, hash)
	return chain.Submit(ctx, c, call, watch, nonce)
}

// ClearTargetPackage removes a settled source package.
func ClearTargetPackage(ctx context.Context, c chain.Client, cid uint32, packageKey []byte, watch bool, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallClearTargetPackage, cid, packageKey)
	return chain.Submit(ctx, c, call, watch, nonce)
}

// CreateChannelWithTaproot registers a channel whose committees use taproot
// scripts.
func CreateChannelWithTaproot(ctx context.Context, c chain.Client, info []byte, connections []TaprootConnection, taprootTypes []TaprootBinding, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallCreateChannelWithTaproot, info, connections, taprootTypes)
	return c.SubmitSignedAndWatch(ctx, call, nonce)
}

// RequestToSignRefresh asks committee cid to sign an inscription refresh.
func RequestToSignRefresh(ctx context.Context, c chain.Client, cid uint32, inscriptionTx []byte, inscriptionPos uint8, msg []byte, watch bool, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallRequestToSignRefresh, cid, inscriptionTx, inscriptionPos, msg)
	return chain.Submit(ctx, c, call, watch, nonce)
}

func refreshResultCall(cid uint32, inscriptionTx []byte, inscriptionPos uint8, senderPK, senderSig, cmtSig []byte, forkID uint8) chain.Call {
	return chain.NewCall(Pallet, CallSubmitRefreshResult, cid, inscriptionTx, inscriptionPos, senderPK, senderSig, cmtSig, forkID)
}

// SubmitRefreshResult submits the committee signature of a refresh.
func SubmitRefreshResult(ctx context.Context, c chain.Client, cid uint32, inscriptionTx []byte, inscriptionPos uint8, senderPK, senderSig, cmtSig []byte, forkID uint8) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, refreshResultCall(cid, inscriptionTx, inscriptionPos, senderPK, senderSig, cmtSig, forkID))
}

// SubmitRefreshResultCallBytes returns the unsigned extrinsic
// SubmitRefreshResult would submit.
func SubmitRefreshResultCallBytes(ctx context.Context, c chain.Client, cid uint32, inscriptionTx []byte, inscriptionPos uint8, senderPK, senderSig, cmtSig []byte, forkID uint8) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, refreshResultCall(cid, inscriptionTx, inscriptionPos, senderPK, senderSig, cmtSig, forkID))
}

// SignIssueXudt asks committee cid to sign an xUDT issuance.
func SignIssueXudt(ctx context.Context, c chain.Client, cid uint32, argsOfToken, msg []byte, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallSignIssueXudt, cid, argsOfToken, msg)
	return c.SubmitSignedAndWatch(ctx, call, nonce)
}

func issueXudtSignResultCall(cid uint32, argsOfToken, pk, sig []byte, forkID uint8, signature []byte) chain.Call {
	return chain.NewCall(Pallet, CallSubmitIssueXudtSignResult, cid, argsOfToken, pk, sig, forkID, signature)
}

// SubmitIssueXudtSignResult submits the committee signature of an xUDT issuance.
func SubmitIssueXudtSignResult(ctx context.Context, c chain.Client, cid uint32, argsOfToken, pk, sig []byte, forkID uint8, signature []byte) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, issueXudtSignResultCall(cid, argsOfToken, pk, sig, forkID, signature))
}

// SubmitIssueXudtSignResultCallBytes returns the unsigned extrinsic
// SubmitIssueXudtSignResult would submit.
func SubmitIssueXudtSignResultCallBytes(ctx context.Context, c chain.Client, cid uint32, argsOfToken, pk, sig []byte, forkID uint8, signature []byte) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, issueXudtSignResultCall(cid, argsOfToken, pk, sig, forkID, signature))
}

// SyncIssueXudtResult records the outcome of an xUDT issuance.
func SyncIssueXudtResult(ctx context.Context, c chain.Client, cid uint32, argsOfToken []byte, status XudtStatus, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallSyncIssueXudtResult, cid, argsOfToken, status)
	return c.SubmitSignedAndWatch(ctx, call, nonce)
}

// UpdateSrcHashSeq advances the source hash sequence of destination committee
// cid. It never waits for inclusion.
func UpdateSrcHashSeq(ctx context.Context, c chain.Client, cid, srcChain uint32, srcHash []byte, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallUpdateSrcHashSeq, cid, srcChain, srcHash)
	return c.SubmitSigned(ctx, call, nonce)
}

func uidSignResultCall(cid uint32, uid, pk, sig []byte, forkID uint8, signature []byte) chain.Call {
	return chain.NewCall(Pallet, CallSubmitUidSignResult, cid, uid, pk, sig, forkID, signature)
}

// SubmitUidSignResult submits the committee signature over uid.
func SubmitUidSignResult(ctx context.Context, c chain.Client, cid uint32, uid, pk, sig []byte, forkID uint8, signature []byte) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, uidSignResultCall(cid, uid, pk, sig, forkID, signature))
}

// SubmitUidSignResultCallBytes returns the unsigned extrinsic
// SubmitUidSignResult would submit.
func SubmitUidSignResultCallBytes(ctx context.Context, c chain.Client, cid uint32, uid, pk, sig []byte, forkID uint8, signature []byte) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, uidSignResultCall(cid, uid, pk, sig, forkID, signature))
}

// RequestToSignForcedWithdrawal asks for a forced withdrawal to be signed.
func RequestToSignForcedWithdrawal(ctx context.Context, c chain.Client, txNonce chain.U128, msg []byte, watch bool, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallSignForcedWithdrawal, txNonce, msg)
	return chain.Submit(ctx, c, call, watch, nonce)
}

func finishForcedWithdrawalCall(cid uint32, txNonce chain.U128, senderPK, senderSig, cmtSig []byte, forkID uint8) chain.Call {
	return chain.NewCall(Pallet, CallFinishForcedWithdrawal, cid, txNonce, senderPK, senderSig, cmtSig, forkID)
}

// FinishForcedWithdrawalResult submits the committee signature closing a
// forced withdrawal.
func FinishForcedWithdrawalResult(ctx context.Context, c chain.Client, cid uint32, txNonce chain.U128, senderPK, senderSig, cmtSig []byte, forkID uint8) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, finishForcedWithdrawalCall(cid, txNonce, senderPK, senderSig, cmtSig, forkID))
}

// FinishForcedWithdrawalResultCallBytes returns the unsigned extrinsic
// FinishForcedWithdrawalResult would submit.
func FinishForcedWithdrawalResultCallBytes(ctx context.Context, c chain.Client, cid uint32, txNonce chain.U128, senderPK, senderSig, cmtSig []byte, forkID uint8) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, finishForcedWithdrawalCall(cid, txNonce, senderPK, senderSig, cmtSig, forkID))
}
