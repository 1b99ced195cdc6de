package quark

// Predefined quarks. Their ids are stable for the life of the process and
// across processes, so they may be stored in tables and switch statements.
const (
	None Quark = iota
	KeyActivityDate
	KeyAdded
	KeyAddedDate
	KeyAddedF
	KeyAlternativeSpeedDown
	KeyAlternativeSpeedEnabled
	KeyAlternativeSpeedUp
	KeyAnnounce
	KeyAnnounceList
	KeyArguments
	KeyBlocklistEnabled
	KeyBlocklistURL
	KeyComment
	KeyComplete
	KeyCreatedBy
	KeyCreationDate
	KeyDHTEnabled
	KeyDownloadDir
	KeyDownloadQueueEnabled
	KeyDownloadQueueSize
	KeyDownloaded
	KeyDropped
	KeyEncoding
	KeyEncryption
	KeyFailureReason
	KeyFields
	KeyFiles
	KeyHTTPSeeds
	KeyID
	KeyIDs
	KeyIncomplete
	KeyIncompleteDir
	KeyIncompleteDirEnabled
	KeyInfo
	KeyInterval
	KeyLength
	KeyLPDEnabled
	KeyM
	KeyMD5Sum
	KeyMessageLevel
	KeyMetadataSize
	KeyMethod
	KeyMinInterval
	KeyMsgType
	KeyName
	KeyNameUTF8
	KeyPath
	KeyPathUTF8
	KeyPeerLimitGlobal
	KeyPeerLimitPerTorrent
	KeyPeerPort
	KeyPeers
	KeyPeers6
	KeyPEXEnabled
	KeyPiece
	KeyPieceLength
	KeyPieces
	KeyPort
	KeyPrivate
	KeyRatioLimit
	KeyRatioLimitEnabled
	KeyReqq
	KeyResult
	KeyRPCAuthenticationRequired
	KeyRPCBindAddress
	KeyRPCEnabled
	KeyRPCPort
	KeyRPCWhitelist
	KeySource
	KeySpeedLimitDown
	KeySpeedLimitDownEnabled
	KeySpeedLimitUp
	KeySpeedLimitUpEnabled
	KeyTag
	KeyTorrents
	KeyTotalSize
	KeyTrackerID
	KeyUmask
	KeyURLList
	KeyUTMetadata
	KeyUTPEnabled
	KeyUTPex
	KeyV
	KeyWarningMessage

	numKnown
)

// known maps each predefined quark to its string. Indexed composite
// literal so an entry can never drift from its constant.
var known = [numKnown]string{
	None:                         "",
	KeyActivityDate:              "activity-date",
	KeyAdded:                     "added",
	KeyAddedDate:                 "added-date",
	KeyAddedF:                    "added.f",
	KeyAlternativeSpeedDown:      "alt-speed-down",
	KeyAlternativeSpeedEnabled:   "alt-speed-enabled",
	KeyAlternativeSpeedUp:        "alt-speed-up",
	KeyAnnounce:                  "announce",
	KeyAnnounceList:              "announce-list",
	KeyArguments:                 "arguments",
	KeyBlocklistEnabled:          "blocklist-enabled",
	KeyBlocklistURL:              "blocklist-url",
	KeyComment:                   "comment",
	KeyComplete:                  "complete",
	KeyCreatedBy:                 "created by",
	KeyCreationDate:              "creation date",
	KeyDHTEnabled:                "dht-enabled",
	KeyDownloadDir:               "download-dir",
	KeyDownloadQueueEnabled:      "download-queue-enabled",
	KeyDownloadQueueSize:         "download-queue-size",
	KeyDownloaded:                "downloaded",
	KeyDropped:                   "dropped",
	KeyEncoding:                  "encoding",
	KeyEncryption:                "encryption",
	KeyFailureReason:             "failure reason",
	KeyFields:                    "fields",
	KeyFiles:                     "files",
	KeyHTTPSeeds:                 "httpseeds",
	KeyID:                        "id",
	KeyIDs:                       "ids",
	KeyIncomplete:                "incomplete",
	KeyIncompleteDir:             "incomplete-dir",
	KeyIncompleteDirEnabled:      "incomplete-dir-enabled",
	KeyInfo:                      "info",
	KeyInterval:                  "interval",
	KeyLength:                    "length",
	KeyLPDEnabled:                "lpd-enabled",
	KeyM:                         "m",
	KeyMD5Sum:                    "md5sum",
	KeyMessageLevel:              "message-level",
	KeyMetadataSize:              "metadata_size",
	KeyMethod:                    "method",
	KeyMinInterval:               "min interval",
	KeyMsgType:                   "msg_type",
	KeyName:                      "name",
	KeyNameUTF8:                  "name.utf-8",
	KeyPath:                      "path",
	KeyPathUTF8:                  "path.utf-8",
	KeyPeerLimitGlobal:           "peer-limit-global",
	KeyPeerLimitPerTorrent:       "peer-limit-per-torrent",
	KeyPeerPort:                  "peer-port",
	KeyPeers:                     "peers",
	KeyPeers6:                    "peers6",
	KeyPEXEnabled:                "pex-enabled",
	KeyPiece:                     "piece",
	KeyPieceLength:               "piece length",
	KeyPieces:                    "pieces",
	KeyPort:                      "port",
	KeyPrivate:                   "private",
	KeyRatioLimit:                "ratio-limit",
	KeyRatioLimitEnabled:         "ratio-limit-enabled",
	KeyReqq:                      "reqq",
	KeyResult:                    "result",
	KeyRPCAuthenticationRequired: "rpc-authentication-required",
	KeyRPCBindAddress:            "rpc-bind-address",
	KeyRPCEnabled:                "rpc-enabled",
	KeyRPCPort:                   "rpc-port",
	KeyRPCWhitelist:              "rpc-whitelist",
	KeySource:                    "source",
	KeySpeedLimitDown:            "speed-limit-down",
	KeySpeedLimitDownEnabled:     "speed-limit-down-enabled",
	KeySpeedLimitUp:              "speed-limit-up",
	KeySpeedLimitUpEnabled:       "speed-limit-up-enabled",
	KeyTag:                       "tag",
	KeyTorrents:                  "torrents",
	KeyTotalSize:                 "total_size",
	KeyTrackerID:                 "tracker id",
	KeyUmask:                     "umask",
	KeyURLList:                   "url-list",
	KeyUTMetadata:                "ut_metadata",
	KeyUTPEnabled:                "utp-enabled",
	KeyUTPex:                     "ut_pex",
	KeyV:                         "v",
	KeyWarningMessage:            "warning message",
}
