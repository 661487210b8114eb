package session

// Handshake (serverbound only; this is the only packet in the state).
const (
	HandshakeServerboundHandshake int32 = 0x00
)

// Login packet ids, both directions.
const (
	LoginServerboundLoginStart        int32 = 0x00
	LoginServerboundLoginAcknowledged int32 = 0x03

	LoginClientboundDisconnect       int32 = 0x00
	LoginClientboundEncryptionRequest int32 = 0x01
	LoginClientboundLoginSuccess     int32 = 0x02
	LoginClientboundSetCompression   int32 = 0x03
)

// Configuration packet ids, both directions. ClientInformation and
// FinishConfigurationAck share id 0x00/0x03 with Login's constants by
// coincidence of the wire table; they are named separately here because
// they belong to a different state.
const (
	ConfigurationServerboundClientInformation    int32 = 0x00
	ConfigurationServerboundFinishAck             int32 = 0x03
	ConfigurationServerboundKeepAlive             int32 = 0x04
	ConfigurationServerboundResourcePackResponse  int32 = 0x06
	ConfigurationServerboundKnownPacks            int32 = 0x07

	ConfigurationClientboundPluginMessage   int32 = 0x01
	ConfigurationClientboundDisconnect      int32 = 0x02
	ConfigurationClientboundFinish          int32 = 0x03
	ConfigurationClientboundKeepAlive       int32 = 0x04
	ConfigurationClientboundRegistryData    int32 = 0x07
	ConfigurationClientboundResourcePackPush int32 = 0x09
	ConfigurationClientboundFeatureFlags    int32 = 0x0C
	ConfigurationClientboundKnownPacks      int32 = 0x0E
)

// PlayServerbound holds the serverbound Play packet ids this codebase
// uses. Grounded on spec's External Interfaces table.
const (
	PlayServerboundConfirmTeleport        int32 = 0x00
	PlayServerboundChatCommand            int32 = 0x05
	PlayServerboundChatMessage            int32 = 0x07
	PlayServerboundKeepAlive              int32 = 0x18
	PlayServerboundPlayerPosition         int32 = 0x1C
	PlayServerboundPlayerPositionRotation int32 = 0x1D
	PlayServerboundPlayerRotation         int32 = 0x1E
	PlayServerboundPlayerOnGround         int32 = 0x1F
	PlayServerboundPlayerCommand          int32 = 0x25
	PlayServerboundHeldItemChange         int32 = 0x2F
	PlayServerboundSwingArm               int32 = 0x39
	PlayServerboundUseItem                int32 = 0x3D
	PlayServerboundClientStatus           int32 = 0x09
	// PlayServerboundPong coincides on the wire with the clientbound
	// ChunkDataAndUpdateLight id in this codebase; this is a known quirk
	// preserved verbatim rather than silently corrected (see DESIGN.md).
	PlayServerboundPong int32 = 0x28
	// PlayServerboundConfigurationAck is sent in reply to StartConfiguration.
	// The correct serverbound reply at this point in the handshake is
	// ConfigurationServerboundFinishAck (0x03); this source instead sends a
	// bare 0x0C, matching the original implementation's send_packet(0x0C)
	// call verbatim rather than silently correcting it (see DESIGN.md).
	PlayServerboundConfigurationAck int32 = 0x0C
)

// PlayClientbound is the full 1.21.x clientbound Play packet id table,
// 0x00 through 0x78, preserved verbatim.
const (
	PlayClientboundBundleDelimiter                 int32 = 0x00
	PlayClientboundSpawnEntity                     int32 = 0x01
	PlayClientboundSpawnExperienceOrb               int32 = 0x02
	PlayClientboundEntityAnimation                 int32 = 0x03
	PlayClientboundAwardStatistics                 int32 = 0x04
	PlayClientboundAcknowledgeBlockChange           int32 = 0x05
	PlayClientboundSetBlockDestroyStage              int32 = 0x06
	PlayClientboundBlockEntityData                  int32 = 0x07
	PlayClientboundBlockAction                      int32 = 0x08
	PlayClientboundBlockUpdate                      int32 = 0x09
	PlayClientboundBossBar                          int32 = 0x0A
	PlayClientboundChangeDifficulty                 int32 = 0x0B
	PlayClientboundChunkBatchFinished               int32 = 0x0C
	PlayClientboundChunkBatchStart                  int32 = 0x0D
	PlayClientboundChunkBiomes                      int32 = 0x0E
	PlayClientboundClearTitles                      int32 = 0x0F
	PlayClientboundCommandSuggestionsResponse        int32 = 0x10
	PlayClientboundCommands                         int32 = 0x11
	PlayClientboundCloseContainer                   int32 = 0x12
	PlayClientboundSetContainerContent               int32 = 0x13
	PlayClientboundSetContainerProperty              int32 = 0x14
	PlayClientboundSetContainerSlot                  int32 = 0x15
	PlayClientboundCookieRequest                    int32 = 0x16
	PlayClientboundSetCooldown                      int32 = 0x17
	PlayClientboundChatSuggestions                  int32 = 0x18
	PlayClientboundPluginMessage                    int32 = 0x19
	PlayClientboundDamageEvent                      int32 = 0x1A
	PlayClientboundDebugSample                      int32 = 0x1B
	PlayClientboundDeleteMessage                    int32 = 0x1C
	PlayClientboundDisconnect                       int32 = 0x1D
	PlayClientboundDisguisedChat                    int32 = 0x1E
	PlayClientboundEntityEvent                      int32 = 0x1F
	PlayClientboundTeleportEntity                   int32 = 0x20
	PlayClientboundExplosion                        int32 = 0x21
	PlayClientboundUnloadChunk                      int32 = 0x22
	PlayClientboundGameEvent                        int32 = 0x23
	PlayClientboundOpenHorseScreen                  int32 = 0x24
	PlayClientboundHurtAnimation                    int32 = 0x25
	PlayClientboundInitializeWorldBorder             int32 = 0x26
	PlayClientboundKeepAlive                        int32 = 0x27
	PlayClientboundChunkDataAndUpdateLight            int32 = 0x28
	PlayClientboundWorldEvent                       int32 = 0x29
	PlayClientboundParticle                         int32 = 0x2A
	PlayClientboundUpdateLight                      int32 = 0x2B
	PlayClientboundLogin                            int32 = 0x2C
	PlayClientboundMapData                          int32 = 0x2D
	PlayClientboundMerchantOffers                   int32 = 0x2E
	PlayClientboundUpdateEntityPosition              int32 = 0x2F
	PlayClientboundUpdateEntityPositionAndRotation    int32 = 0x30
	PlayClientboundUpdateEntityRotation              int32 = 0x31
	PlayClientboundMoveVehicle                      int32 = 0x32
	PlayClientboundOpenBook                         int32 = 0x33
	PlayClientboundOpenScreen                       int32 = 0x34
	PlayClientboundOpenSignEditor                   int32 = 0x35
	PlayClientboundPing                             int32 = 0x36
	PlayClientboundPongResponse                     int32 = 0x37
	PlayClientboundPlaceGhostRecipe                 int32 = 0x38
	PlayClientboundPlayerAbilities                  int32 = 0x39
	PlayClientboundPlayerChatMessage                int32 = 0x3A
	PlayClientboundEndCombat                        int32 = 0x3B
	PlayClientboundEnterCombat                      int32 = 0x3C
	PlayClientboundCombatDeath                      int32 = 0x3D
	PlayClientboundPlayerInfoRemove                 int32 = 0x3E
	PlayClientboundPlayerInfoUpdate                 int32 = 0x3F
	PlayClientboundLookAt                           int32 = 0x40
	PlayClientboundSynchronizePlayerPosition        int32 = 0x41
	PlayClientboundUpdateRecipeBook                 int32 = 0x42
	PlayClientboundRemoveEntities                   int32 = 0x43
	PlayClientboundRemoveEntityEffect               int32 = 0x44
	PlayClientboundResetScore                       int32 = 0x45
	PlayClientboundRemoveResourcePack               int32 = 0x46
	PlayClientboundAddResourcePack                  int32 = 0x47
	PlayClientboundRespawn                          int32 = 0x48
	PlayClientboundSetHeadRotation                  int32 = 0x49
	PlayClientboundUpdateSectionBlocks              int32 = 0x4A
	PlayClientboundSelectAdvancementsTab            int32 = 0x4B
	PlayClientboundServerData                       int32 = 0x4C
	PlayClientboundSetActionBarText                 int32 = 0x4D
	PlayClientboundSetBorderCenter                  int32 = 0x4E
	PlayClientboundSetBorderLerpSize                int32 = 0x4F
	PlayClientboundSetBorderSize                    int32 = 0x50
	PlayClientboundSetBorderWarningDelay            int32 = 0x51
	PlayClientboundSetBorderWarningDistance         int32 = 0x52
	PlayClientboundSetCamera                        int32 = 0x53
	PlayClientboundSetCenterChunk                   int32 = 0x54
	PlayClientboundSetRenderDistance                int32 = 0x55
	PlayClientboundSetDefaultSpawnPosition          int32 = 0x56
	PlayClientboundDisplayObjective                 int32 = 0x57
	PlayClientboundSetEntityMetadata                int32 = 0x58
	PlayClientboundLinkEntities                     int32 = 0x59
	PlayClientboundSetEntityVelocity                int32 = 0x5A
	PlayClientboundSetEquipment                     int32 = 0x5B
	PlayClientboundSetExperience                    int32 = 0x5C
	PlayClientboundSetHealth                        int32 = 0x5D
	PlayClientboundUpdateObjectives                 int32 = 0x5E
	PlayClientboundSetPassengers                    int32 = 0x5F
	PlayClientboundUpdateTeams                      int32 = 0x60
	PlayClientboundUpdateScore                      int32 = 0x61
	PlayClientboundSetSimulationDistance            int32 = 0x62
	PlayClientboundSetSubtitleText                  int32 = 0x63
	PlayClientboundUpdateTime                       int32 = 0x64
	PlayClientboundSetTitleText                     int32 = 0x65
	PlayClientboundSetTitleAnimationTimes           int32 = 0x66
	PlayClientboundEntitySoundEffect                int32 = 0x67
	PlayClientboundSoundEffect                      int32 = 0x68
	PlayClientboundStartConfiguration               int32 = 0x69
	PlayClientboundStopSound                        int32 = 0x6A
	PlayClientboundStoreCookie                      int32 = 0x6B
	PlayClientboundSystemChatMessage                int32 = 0x6C
	PlayClientboundSetTabListHeaderAndFooter        int32 = 0x6D
	PlayClientboundTagQueryResponse                 int32 = 0x6E
	PlayClientboundPickupItem                       int32 = 0x6F
	PlayClientboundTransfer                         int32 = 0x70
	PlayClientboundUpdateAdvancements               int32 = 0x71
	PlayClientboundUpdateAttributes                 int32 = 0x72
	PlayClientboundEntityEffect                     int32 = 0x73
	PlayClientboundUpdateRecipes                    int32 = 0x74
	PlayClientboundUpdateTags                       int32 = 0x75
	PlayClientboundProjectilePower                  int32 = 0x76
	PlayClientboundCustomReportDetails              int32 = 0x77
	PlayClientboundServerLinks                      int32 = 0x78
)
